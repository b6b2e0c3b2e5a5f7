package outcome

import "encoding/json"

type resultWire[T any] struct {
	Value            *T                `json:"value,omitempty"`
	Status           Status            `json:"status"`
	IsSuccess        bool              `json:"isSuccess"`
	SuccessMessage   string            `json:"successMessage"`
	CorrelationID    string            `json:"correlationId"`
	Errors           []string          `json:"errors"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type pagedWire[T any] struct {
	resultWire[T]
	PagedInfo *PagedInfo `json:"pagedInfo"`
}

func (r Result[T]) toWire() resultWire[T] {
	w := resultWire[T]{
		Status:           r.status,
		IsSuccess:        r.IsSuccess(),
		SuccessMessage:   r.successMessage,
		CorrelationID:    r.correlationID,
		Errors:           r.Errors(),
		ValidationErrors: r.ValidationErrors(),
	}
	if r.hasValue {
		v := r.value
		w.Value = &v
	}
	return w
}

func (w resultWire[T]) toResult() Result[T] {
	r := Result[T]{
		status:           w.Status,
		errors:           w.Errors,
		validationErrors: w.ValidationErrors,
		successMessage:   w.SuccessMessage,
		correlationID:    w.CorrelationID,
	}
	if w.Value != nil && w.Status.IsSuccess() {
		r.value = *w.Value
		r.hasValue = true
	}
	return r
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toWire())
}

// UnmarshalJSON restores a result encoded by MarshalJSON. A payload sent
// alongside a failure status is discarded.
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var w resultWire[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = w.toResult()
	return nil
}

func (p PagedResult[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(pagedWire[T]{
		resultWire: p.Result.toWire(),
		PagedInfo:  p.pagedInfo,
	})
}

func (p *PagedResult[T]) UnmarshalJSON(data []byte) error {
	var w pagedWire[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.Result = w.resultWire.toResult()
	p.pagedInfo = w.PagedInfo
	return nil
}
