package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/inkwash/inkwash/internal/inkwash/tools"
	"github.com/inkwash/inkwash/internal/mcp"
)

// Identity reported in the initialize result.
type Identity struct {
	Name         string
	Version      string
	Instructions string
}

// messageProcessor is the stateful dispatcher. It runs as a single
// goroutine and handles one inbound message fully before pulling the next,
// so replies leave in arrival order. It is the sole owner of the
// initialized flag.
type messageProcessor struct {
	out      *outQueue
	invoker  tools.Invoker
	identity Identity

	initialized bool
}

func newMessageProcessor(out *outQueue, invoker tools.Invoker, identity Identity) *messageProcessor {
	return &messageProcessor{
		out:      out,
		invoker:  invoker,
		identity: identity,
	}
}

func (p *messageProcessor) run(ctx context.Context, inbound <-chan *mcp.Message) {
	defer p.out.Close()

	for msg := range inbound {
		switch msg.Kind() {
		case mcp.KindRequest:
			if !p.processRequest(ctx, msg) {
				// Reply queue closed: designed shutdown path, stop consuming.
				log.Debug().Msg("reply queue closed, dispatcher exiting")
				return
			}
		case mcp.KindResponse:
			log.Debug().Interface("id", msg.ID).Msg("received response")
		case mcp.KindNotification:
			log.Debug().Str("method", msg.Method).Msg("received notification")
		case mcp.KindError:
			log.Error().Int("code", msg.Error.Code).Str("error", msg.Error.Message).Msg("received error")
		}
	}

	log.Debug().Msg("dispatcher finished (inbound closed)")
}

// processRequest routes one request and enqueues exactly one reply for it.
// The return value is false once the reply queue no longer accepts.
func (p *messageProcessor) processRequest(ctx context.Context, req *mcp.Message) bool {
	log.Debug().Str("method", req.Method).Interface("id", req.ID).Msg("processing request")

	switch req.Method {
	case mcp.MethodInitialize:
		return p.handleInitialize(req)
	case mcp.MethodPing:
		return p.sendResult(req.ID, mcp.M{})
	case mcp.MethodToolsList:
		return p.handleToolsList(req)
	case mcp.MethodToolsCall:
		return p.handleToolsCall(ctx, req)
	default:
		return p.sendError(req.ID, mcp.CodeMethodNotFound,
			fmt.Errorf("Method not found: %s", req.Method))
	}
}

func (p *messageProcessor) handleInitialize(req *mcp.Message) bool {
	params, err := parseParams[mcp.InitializeRequest](req.Params)
	if err != nil {
		return p.sendError(req.ID, mcp.CodeInvalidParams, fmt.Errorf("Invalid params: %v", err))
	}

	result := mcp.InitializeResponse{
		ProtocolVersion: mcp.ProtocolVersion,
		Capabilities:    mcp.DefaultCapabilities,
		ServerInfo: mcp.ServerInfo{
			Name:    p.identity.Name,
			Version: p.identity.Version,
		},
		Instructions: p.identity.Instructions,
	}

	// The transition is irreversible for the process lifetime.
	p.initialized = true

	if params.ClientInfo != nil {
		log.Info().Str("client", params.ClientInfo.Name).Str("version", params.ClientInfo.Version).Msg("initialized")
	} else {
		log.Info().Msg("initialized")
	}
	return p.sendResult(req.ID, result)
}

func (p *messageProcessor) handleToolsList(req *mcp.Message) bool {
	if !p.initialized {
		return p.sendErr(req.ID, mcp.ErrNotInitialized)
	}
	return p.sendResult(req.ID, mcp.M{"tools": tools.Catalog()})
}

func (p *messageProcessor) handleToolsCall(ctx context.Context, req *mcp.Message) bool {
	if !p.initialized {
		return p.sendErr(req.ID, mcp.ErrNotInitialized)
	}

	call, err := parseParams[mcp.ToolsCallRequest](req.Params)
	if err != nil {
		return p.sendError(req.ID, mcp.CodeInvalidParams, fmt.Errorf("Invalid params: %v", err))
	}

	result, err := p.invoker.Invoke(ctx, call.Name, call.Arguments)
	if err != nil {
		// Execution-level failure of a well-formed request: report it as a
		// successful reply carrying an error-marked result, not as a
		// protocol error.
		result = mcp.TextError(fmt.Sprintf("Error: %v", err))
	}
	return p.sendResult(req.ID, result)
}

// sendResult marshals the result up front so a result that cannot reach the
// wire is replaced with a protocol error instead of vanishing in the writer.
func (p *messageProcessor) sendResult(id interface{}, result interface{}) bool {
	raw, err := json.Marshal(result)
	if err != nil {
		return p.sendError(id, mcp.CodeSerialization, fmt.Errorf("Serialization error: %v", err))
	}
	return p.send(mcp.NewResponse(id, json.RawMessage(raw)))
}

func (p *messageProcessor) sendError(id interface{}, code int, err error) bool {
	return p.send(mcp.NewErrorResponse(id, code, err))
}

func (p *messageProcessor) sendErr(id interface{}, e *mcp.Error) bool {
	return p.sendError(id, e.Code, errors.New(e.Message))
}

func (p *messageProcessor) send(resp *mcp.Response) bool {
	return p.out.Send(resp)
}

// parseParams decodes raw request params into the handler's shape.
func parseParams[T any](params json.RawMessage) (*T, error) {
	if len(params) == 0 {
		return nil, errors.New("params is nil")
	}

	var result T
	if err := json.Unmarshal(params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
