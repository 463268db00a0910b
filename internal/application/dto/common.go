package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ExceptionResponse hallazgo de cumplimiento en respuestas HTTP.
type ExceptionResponse struct {
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// ErrorResponse cuerpo de error HTTP. Details trae la lista completa de
// excepciones cuando una política bloquea la operación, para que la UI pueda
// explicar qué corregir.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details []ExceptionResponse `json:"details,omitempty"`
}
