package http

import (
	"context"
	"encoding/json"
	"errors"
)

// Typed dispatch. The target type is carried by an ordinary generic type
// parameter resolved at compile time, so "list of Foo" is just []Foo — no
// runtime type descriptor is needed. The body is decoded as JSON.
//
// A non-success status fails with a RequestError carrying the drained body;
// a body that does not decode into T fails with a DeserializationError.

// RequestAs dispatches without a body and decodes the response into T.
func RequestAs[T any](wt *WebTarget, method HttpMethod) (*ResponseHandler[T], error) {
	return requestTyped[T](context.Background(), wt, method, nil)
}

// RequestEntityAs dispatches with a body entity and decodes the response
// into T.
func RequestEntityAs[T any](wt *WebTarget, method HttpMethod, entity *Entity) (*ResponseHandler[T], error) {
	return requestTyped[T](context.Background(), wt, method, entity)
}

// RequestStringAs dispatches with the payload wrapped into a UTF-8 text
// entity and decodes the response into T.
func RequestStringAs[T any](wt *WebTarget, method HttpMethod, payload string) (*ResponseHandler[T], error) {
	return requestTyped[T](context.Background(), wt, method, NewStringEntity(payload))
}

// RequestWithContextAs is the context-aware general form of typed dispatch.
func RequestWithContextAs[T any](ctx context.Context, wt *WebTarget, method HttpMethod, entity *Entity) (*ResponseHandler[T], error) {
	return requestTyped[T](ctx, wt, method, entity)
}

func requestTyped[T any](ctx context.Context, wt *WebTarget, method HttpMethod, entity *Entity) (*ResponseHandler[T], error) {
	resp, err := wt.RequestWithContext(ctx, method, entity)
	if err != nil {
		return nil, err
	}

	body, err := resp.BodyAsString()
	if err != nil && !errors.Is(err, ErrNoContent) {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, &RequestError{
			StatusCode: resp.statusCode,
			Status:     resp.status,
			Body:       []byte(body),
		}
	}

	handler := &ResponseHandler[T]{
		statusCode: resp.statusCode,
		status:     resp.status,
		headers:    resp.headers,
		timing:     resp.timing,
	}
	if body == "" {
		return handler, nil
	}

	var value T
	if err := json.Unmarshal([]byte(body), &value); err != nil {
		return nil, &DeserializationError{Err: err}
	}
	handler.value = value
	handler.hasContent = true
	return handler, nil
}

// GetAs dispatches a GET and decodes the response into T.
func GetAs[T any](wt *WebTarget) (*ResponseHandler[T], error) {
	return RequestAs[T](wt, GET)
}

// GetEntityAs dispatches a GET with a body entity and decodes into T.
func GetEntityAs[T any](wt *WebTarget, entity *Entity) (*ResponseHandler[T], error) {
	return RequestEntityAs[T](wt, GET, entity)
}

// GetStringAs dispatches a GET with a text payload and decodes into T.
func GetStringAs[T any](wt *WebTarget, payload string) (*ResponseHandler[T], error) {
	return RequestStringAs[T](wt, GET, payload)
}

// PutAs dispatches a PUT and decodes the response into T.
func PutAs[T any](wt *WebTarget) (*ResponseHandler[T], error) {
	return RequestAs[T](wt, PUT)
}

// PutEntityAs dispatches a PUT with a body entity and decodes into T.
func PutEntityAs[T any](wt *WebTarget, entity *Entity) (*ResponseHandler[T], error) {
	return RequestEntityAs[T](wt, PUT, entity)
}

// PutStringAs dispatches a PUT with a text payload and decodes into T.
func PutStringAs[T any](wt *WebTarget, payload string) (*ResponseHandler[T], error) {
	return RequestStringAs[T](wt, PUT, payload)
}

// PostAs dispatches a POST and decodes the response into T.
func PostAs[T any](wt *WebTarget) (*ResponseHandler[T], error) {
	return RequestAs[T](wt, POST)
}

// PostEntityAs dispatches a POST with a body entity and decodes into T.
func PostEntityAs[T any](wt *WebTarget, entity *Entity) (*ResponseHandler[T], error) {
	return RequestEntityAs[T](wt, POST, entity)
}

// PostStringAs dispatches a POST with a text payload and decodes into T.
func PostStringAs[T any](wt *WebTarget, payload string) (*ResponseHandler[T], error) {
	return RequestStringAs[T](wt, POST, payload)
}

// DeleteAs dispatches a DELETE and decodes the response into T.
func DeleteAs[T any](wt *WebTarget) (*ResponseHandler[T], error) {
	return RequestAs[T](wt, DELETE)
}

// DeleteEntityAs dispatches a DELETE with a body entity and decodes into T.
func DeleteEntityAs[T any](wt *WebTarget, entity *Entity) (*ResponseHandler[T], error) {
	return RequestEntityAs[T](wt, DELETE, entity)
}

// DeleteStringAs dispatches a DELETE with a text payload and decodes into T.
func DeleteStringAs[T any](wt *WebTarget, payload string) (*ResponseHandler[T], error) {
	return RequestStringAs[T](wt, DELETE, payload)
}

// HeadAs dispatches a HEAD and decodes the response into T.
func HeadAs[T any](wt *WebTarget) (*ResponseHandler[T], error) {
	return RequestAs[T](wt, HEAD)
}

// HeadEntityAs dispatches a HEAD with a body entity and decodes into T.
func HeadEntityAs[T any](wt *WebTarget, entity *Entity) (*ResponseHandler[T], error) {
	return RequestEntityAs[T](wt, HEAD, entity)
}

// HeadStringAs dispatches a HEAD with a text payload and decodes into T.
func HeadStringAs[T any](wt *WebTarget, payload string) (*ResponseHandler[T], error) {
	return RequestStringAs[T](wt, HEAD, payload)
}

// OptionsAs dispatches an OPTIONS and decodes the response into T.
func OptionsAs[T any](wt *WebTarget) (*ResponseHandler[T], error) {
	return RequestAs[T](wt, OPTIONS)
}

// OptionsEntityAs dispatches an OPTIONS with a body entity and decodes into T.
func OptionsEntityAs[T any](wt *WebTarget, entity *Entity) (*ResponseHandler[T], error) {
	return RequestEntityAs[T](wt, OPTIONS, entity)
}

// OptionsStringAs dispatches an OPTIONS with a text payload and decodes into T.
func OptionsStringAs[T any](wt *WebTarget, payload string) (*ResponseHandler[T], error) {
	return RequestStringAs[T](wt, OPTIONS, payload)
}

// PatchAs dispatches a PATCH and decodes the response into T.
func PatchAs[T any](wt *WebTarget) (*ResponseHandler[T], error) {
	return RequestAs[T](wt, PATCH)
}

// PatchEntityAs dispatches a PATCH with a body entity and decodes into T.
func PatchEntityAs[T any](wt *WebTarget, entity *Entity) (*ResponseHandler[T], error) {
	return RequestEntityAs[T](wt, PATCH, entity)
}

// PatchStringAs dispatches a PATCH with a text payload and decodes into T.
func PatchStringAs[T any](wt *WebTarget, payload string) (*ResponseHandler[T], error) {
	return RequestStringAs[T](wt, PATCH, payload)
}

// TraceAs dispatches a TRACE and decodes the response into T.
func TraceAs[T any](wt *WebTarget) (*ResponseHandler[T], error) {
	return RequestAs[T](wt, TRACE)
}

// TraceEntityAs dispatches a TRACE with a body entity and decodes into T.
func TraceEntityAs[T any](wt *WebTarget, entity *Entity) (*ResponseHandler[T], error) {
	return RequestEntityAs[T](wt, TRACE, entity)
}

// TraceStringAs dispatches a TRACE with a text payload and decodes into T.
func TraceStringAs[T any](wt *WebTarget, payload string) (*ResponseHandler[T], error) {
	return RequestStringAs[T](wt, TRACE, payload)
}
