package dto

// Discriminante del resultado de una acción mutadora.
const (
	TypeError   = "error"
	TypeSuccess = "success"
)

// Códigos de error de las acciones (mapean a status HTTP en los handlers).
const (
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeValidation       = "VALIDATION"
	CodeMissingReference = "MISSING_REFERENCE"
	CodeDuplicate        = "DUPLICATE"
	CodeDBError          = "DB_ERROR"
	// CodePartial: la escritura principal tuvo éxito pero una escritura
	// dependiente falló (producto creado sin categorías vinculadas).
	CodePartial  = "PARTIAL"
	CodeNotFound = "NOT_FOUND"
)

// ActionState resultado estructurado de una acción mutadora: mensaje mostrable,
// discriminante error|success, código y errores por campo. Las acciones nunca
// propagan errores crudos al handler; todo cruza esta frontera como ActionState.
type ActionState struct {
	Message string              `json:"message"`
	Type    string              `json:"type"` // error | success
	Code    string              `json:"code,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// IsSuccess indica si la acción terminó con éxito.
func (s ActionState) IsSuccess() bool { return s.Type == TypeSuccess }

// ErrorState construye un ActionState de error.
func ErrorState(code, message string) ActionState {
	return ActionState{Message: message, Type: TypeError, Code: code}
}

// ValidationState construye un ActionState de validación fallida con errores por campo.
func ValidationState(message string, fieldErrors map[string][]string) ActionState {
	return ActionState{Message: message, Type: TypeError, Code: CodeValidation, Errors: fieldErrors}
}

// SuccessState construye un ActionState exitoso.
func SuccessState(message string) ActionState {
	return ActionState{Message: message, Type: TypeSuccess}
}

// ErrorResponse cuerpo de error HTTP para endpoints de lectura.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
