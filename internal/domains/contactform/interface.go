package contactform

import "context"

// ServiceInterface - Relays validated submissions to the hosted form
// provider
type ServiceInterface interface {
	Submit(ctx context.Context, req SubmitRequest) error
}
