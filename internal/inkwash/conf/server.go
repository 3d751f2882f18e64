package conf

const (
	DefaultPythonBin        = "python3"
	DefaultInboundQueueSize = 128
)

type ServerConfig struct {
	ConfigDir        string `mapstructure:"-" json:"-"`
	ScriptsDir       string `mapstructure:"scripts_dir" json:"scripts_dir"`
	PythonBin        string `mapstructure:"python_bin" json:"python_bin"`
	InboundQueueSize int    `mapstructure:"inbound_queue_size" json:"inbound_queue_size"`
	Instructions     string `mapstructure:"instructions" json:"instructions"`
}

var ServerDefaults = map[string]any{
	"python_bin":         DefaultPythonBin,
	"inbound_queue_size": DefaultInboundQueueSize,
	"instructions":       "Watermark Remover MCP Server - Remove watermarks from PDF files and images using OpenCV.",
}

func (c *ServerConfig) GetPythonBin() string {
	if c.PythonBin == "" {
		c.PythonBin = DefaultPythonBin
	}
	return c.PythonBin
}

func (c *ServerConfig) GetInboundQueueSize() int {
	if c.InboundQueueSize <= 0 {
		c.InboundQueueSize = DefaultInboundQueueSize
	}
	return c.InboundQueueSize
}
