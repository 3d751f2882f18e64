package conf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestServerConfigDefaults(t *testing.T) {
	c := &ServerConfig{}

	if got := c.GetPythonBin(); got != DefaultPythonBin {
		t.Errorf("GetPythonBin() = %q, want %q", got, DefaultPythonBin)
	}
	if got := c.GetInboundQueueSize(); got != DefaultInboundQueueSize {
		t.Errorf("GetInboundQueueSize() = %d, want %d", got, DefaultInboundQueueSize)
	}

	c = &ServerConfig{PythonBin: "python3.12", InboundQueueSize: 16}
	if got := c.GetPythonBin(); got != "python3.12" {
		t.Errorf("GetPythonBin() = %q, want explicit value", got)
	}
	if got := c.GetInboundQueueSize(); got != 16 {
		t.Errorf("GetInboundQueueSize() = %d, want 16", got)
	}
}

func TestLoadConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "inkwash.json")
	data := `{"scripts_dir":"/opt/inkwash/scripts","python_bin":"python3.12"}`
	if err := os.WriteFile(file, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c, _, err := Load(file)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", file, err)
	}
	if c.ScriptsDir != "/opt/inkwash/scripts" {
		t.Errorf("ScriptsDir = %q, want value from file", c.ScriptsDir)
	}
	if c.PythonBin != "python3.12" {
		t.Errorf("PythonBin = %q, want value from file", c.PythonBin)
	}
	if c.InboundQueueSize != DefaultInboundQueueSize {
		t.Errorf("InboundQueueSize = %d, want default %d", c.InboundQueueSize, DefaultInboundQueueSize)
	}
}

func TestLoadConfigFileMalformed(t *testing.T) {
	file := filepath.Join(t.TempDir(), "inkwash.json")
	if err := os.WriteFile(file, []byte(`{"scripts_dir":`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := Load(file); err == nil {
		t.Fatal("Load() should fail on a malformed config file")
	}
}
