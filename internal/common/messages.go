package common

import "errors"

// User-facing guidance, one per failure kind.
const (
	MsgValidation      = "Preencha e-mail e senha."
	MsgUnauthenticated = "Sessão expirada. Faça login novamente."
	MsgNoConnectivity  = "Sem conexão com a internet."
	MsgTimeout         = "O servidor demorou para responder. Tente novamente."
	MsgTransport       = "Falha de comunicação com o servidor."
	MsgInvalidLogin    = "E-mail ou Senha inválidos."
	MsgServerRejected  = "O servidor recusou a requisição."
	MsgDecode          = "Resposta inesperada do servidor."
	MsgUnknown         = "Erro inesperado."
)

// UserMessage maps err onto the message the UI should display.
// Order matters: the refined transport kinds are checked before ErrTransport.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return MsgValidation
	case errors.Is(err, ErrUnauthenticated), IsTokenRejected(err):
		return MsgUnauthenticated
	case errors.Is(err, ErrNoConnectivity):
		return MsgNoConnectivity
	case errors.Is(err, ErrTimeout):
		return MsgTimeout
	case errors.Is(err, ErrTransport):
		return MsgTransport
	case errors.Is(err, ErrServerRejected):
		return MsgServerRejected
	case errors.Is(err, ErrDecode):
		return MsgDecode
	default:
		return MsgUnknown
	}
}
