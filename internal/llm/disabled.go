package llm

import "context"

type disabledClient struct {
	err error
}

// NewDisabledClient devuelve un Completer que siempre falla con err.
// Se usa cuando falta la credencial para que el proceso arranque igual.
func NewDisabledClient(err error) Completer {
	if err == nil {
		err = ErrMissingCredential
	}
	return &disabledClient{err: err}
}

func (c *disabledClient) Complete(_ context.Context, _ CompletionRequest) (string, error) {
	return "", c.err
}
