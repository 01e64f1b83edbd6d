package http

// Per-verb convenience methods. Each is a pure delegation to the shared
// dispatch routine; no verb carries logic of its own.

// Get dispatches an HTTP GET without a body.
func (wt *WebTarget) Get() (*Response, error) { return wt.Request(GET) }

// GetEntity dispatches an HTTP GET with a body entity.
func (wt *WebTarget) GetEntity(entity *Entity) (*Response, error) {
	return wt.RequestEntity(GET, entity)
}

// GetString dispatches an HTTP GET with a UTF-8 text payload.
func (wt *WebTarget) GetString(payload string) (*Response, error) {
	return wt.RequestString(GET, payload)
}

// RawGet dispatches an HTTP GET discarding the body.
func (wt *WebTarget) RawGet() (*ResponseHandler[NoBody], error) { return wt.RawRequest(GET) }

// Put dispatches an HTTP PUT without a body.
func (wt *WebTarget) Put() (*Response, error) { return wt.Request(PUT) }

// PutEntity dispatches an HTTP PUT with a body entity.
func (wt *WebTarget) PutEntity(entity *Entity) (*Response, error) {
	return wt.RequestEntity(PUT, entity)
}

// PutString dispatches an HTTP PUT with a UTF-8 text payload.
func (wt *WebTarget) PutString(payload string) (*Response, error) {
	return wt.RequestString(PUT, payload)
}

// RawPut dispatches an HTTP PUT discarding the body.
func (wt *WebTarget) RawPut() (*ResponseHandler[NoBody], error) { return wt.RawRequest(PUT) }

// Post dispatches an HTTP POST without a body.
func (wt *WebTarget) Post() (*Response, error) { return wt.Request(POST) }

// PostEntity dispatches an HTTP POST with a body entity.
func (wt *WebTarget) PostEntity(entity *Entity) (*Response, error) {
	return wt.RequestEntity(POST, entity)
}

// PostString dispatches an HTTP POST with a UTF-8 text payload.
func (wt *WebTarget) PostString(payload string) (*Response, error) {
	return wt.RequestString(POST, payload)
}

// RawPost dispatches an HTTP POST discarding the body.
func (wt *WebTarget) RawPost() (*ResponseHandler[NoBody], error) { return wt.RawRequest(POST) }

// Delete dispatches an HTTP DELETE without a body.
func (wt *WebTarget) Delete() (*Response, error) { return wt.Request(DELETE) }

// DeleteEntity dispatches an HTTP DELETE with a body entity.
func (wt *WebTarget) DeleteEntity(entity *Entity) (*Response, error) {
	return wt.RequestEntity(DELETE, entity)
}

// DeleteString dispatches an HTTP DELETE with a UTF-8 text payload.
func (wt *WebTarget) DeleteString(payload string) (*Response, error) {
	return wt.RequestString(DELETE, payload)
}

// RawDelete dispatches an HTTP DELETE discarding the body.
func (wt *WebTarget) RawDelete() (*ResponseHandler[NoBody], error) { return wt.RawRequest(DELETE) }

// Head dispatches an HTTP HEAD without a body.
func (wt *WebTarget) Head() (*Response, error) { return wt.Request(HEAD) }

// HeadEntity dispatches an HTTP HEAD with a body entity.
func (wt *WebTarget) HeadEntity(entity *Entity) (*Response, error) {
	return wt.RequestEntity(HEAD, entity)
}

// HeadString dispatches an HTTP HEAD with a UTF-8 text payload.
func (wt *WebTarget) HeadString(payload string) (*Response, error) {
	return wt.RequestString(HEAD, payload)
}

// RawHead dispatches an HTTP HEAD discarding the body.
func (wt *WebTarget) RawHead() (*ResponseHandler[NoBody], error) { return wt.RawRequest(HEAD) }

// Options dispatches an HTTP OPTIONS without a body.
func (wt *WebTarget) Options() (*Response, error) { return wt.Request(OPTIONS) }

// OptionsEntity dispatches an HTTP OPTIONS with a body entity.
func (wt *WebTarget) OptionsEntity(entity *Entity) (*Response, error) {
	return wt.RequestEntity(OPTIONS, entity)
}

// OptionsString dispatches an HTTP OPTIONS with a UTF-8 text payload.
func (wt *WebTarget) OptionsString(payload string) (*Response, error) {
	return wt.RequestString(OPTIONS, payload)
}

// RawOptions dispatches an HTTP OPTIONS discarding the body.
func (wt *WebTarget) RawOptions() (*ResponseHandler[NoBody], error) { return wt.RawRequest(OPTIONS) }

// Patch dispatches an HTTP PATCH without a body.
func (wt *WebTarget) Patch() (*Response, error) { return wt.Request(PATCH) }

// PatchEntity dispatches an HTTP PATCH with a body entity.
func (wt *WebTarget) PatchEntity(entity *Entity) (*Response, error) {
	return wt.RequestEntity(PATCH, entity)
}

// PatchString dispatches an HTTP PATCH with a UTF-8 text payload.
func (wt *WebTarget) PatchString(payload string) (*Response, error) {
	return wt.RequestString(PATCH, payload)
}

// RawPatch dispatches an HTTP PATCH discarding the body.
func (wt *WebTarget) RawPatch() (*ResponseHandler[NoBody], error) { return wt.RawRequest(PATCH) }

// Trace dispatches an HTTP TRACE without a body.
func (wt *WebTarget) Trace() (*Response, error) { return wt.Request(TRACE) }

// TraceEntity dispatches an HTTP TRACE with a body entity.
func (wt *WebTarget) TraceEntity(entity *Entity) (*Response, error) {
	return wt.RequestEntity(TRACE, entity)
}

// TraceString dispatches an HTTP TRACE with a UTF-8 text payload.
func (wt *WebTarget) TraceString(payload string) (*Response, error) {
	return wt.RequestString(TRACE, payload)
}

// RawTrace dispatches an HTTP TRACE discarding the body.
func (wt *WebTarget) RawTrace() (*ResponseHandler[NoBody], error) { return wt.RawRequest(TRACE) }
