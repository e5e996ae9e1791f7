// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

// ResultKind tags which variant an ActionResult holds.
type ResultKind string

const (
	ResultSuccess         ResultKind = "success"
	ResultValidationError ResultKind = "validation_error"
	ResultServerError     ResultKind = "server_error"
)

// FieldErrors maps an input name to its messages.
type FieldErrors map[string][]string

// Add appends msg to the messages of field.
func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// Empty reports whether no field has a message.
func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

// ActionResult is the outcome of a form action. Exactly one variant applies:
//
//	Success          RedirectTo and/or Message
//	ValidationError  FieldErrors and a summary Message
//	ServerError      a generic Message, never internal error text
type ActionResult struct {
	Kind        ResultKind
	RedirectTo  string
	Message     string
	FieldErrors FieldErrors
}

// Redirect is a Success that navigates to path.
func Redirect(path string) *ActionResult {
	return &ActionResult{Kind: ResultSuccess, RedirectTo: path}
}

// RedirectWithMessage is a Success that navigates to path and carries a notice.
func RedirectWithMessage(path, message string) *ActionResult {
	return &ActionResult{Kind: ResultSuccess, RedirectTo: path, Message: message}
}

// Done is a Success that keeps the caller on the current view.
func Done(message string) *ActionResult {
	return &ActionResult{Kind: ResultSuccess, Message: message}
}

// Invalid is a ValidationError.
func Invalid(fields FieldErrors, message string) *ActionResult {
	return &ActionResult{Kind: ResultValidationError, FieldErrors: fields, Message: message}
}

// Failed is a ServerError.
func Failed(message string) *ActionResult {
	return &ActionResult{Kind: ResultServerError, Message: message}
}

func (r *ActionResult) IsSuccess() bool {
	return r != nil && r.Kind == ResultSuccess
}

// ShouldRedirect reports whether the boundary should answer with a redirect.
func (r *ActionResult) ShouldRedirect() bool {
	return r.IsSuccess() && r.RedirectTo != ""
}
