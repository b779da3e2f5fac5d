package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "não encontrado"
	}
	return fmt.Sprintf("%s não encontrado", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "" && e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("%s não é válido", e.Field)
	default:
		return "erro de validação"
	}
}

func (e ValidationError) Unwrap() error { return e.Err }

// IDMismatchError: update rejected because path id and payload id disagree.
type IDMismatchError struct {
	PathID    int64
	PayloadID int64
}

func (e IDMismatchError) Error() string {
	return "Os IDs informados são diferentes."
}

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("conflito em %s: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("conflito em %s", e.Resource)
	default:
		return "conflito"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// RenderError: the report renderer collaborator failed.
type RenderError struct {
	Err error
}

func (e RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("falha ao gerar o relatório: %v", e.Err)
	}
	return "falha ao gerar o relatório"
}

func (e RenderError) Unwrap() error { return e.Err }

// IdentityCommError: transport failure talking to the usuario service.
// Distinct from UnidentifiedUserError, which is a resolved-but-missing user.
type IdentityCommError struct {
	Err error
}

func (e IdentityCommError) Error() string {
	return "Erro ao conectar com a API de usuários."
}

func (e IdentityCommError) Unwrap() error { return e.Err }

// UnidentifiedUserError: the usuario service answered with the reserved
// sentinel id (0), meaning no such user.
type UnidentifiedUserError struct {
	UserID int64
}

func (e UnidentifiedUserError) Error() string {
	return "Usuário não identificado."
}

// ExportError coalesces every export pipeline failure except the
// unidentified-user case; the true cause stays in the log only.
type ExportError struct {
	Err error
}

func (e ExportError) Error() string {
	return "Erro ao exportar PDF."
}

func (e ExportError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsIDMismatch(err error) bool {
	var target IDMismatchError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsRender(err error) bool {
	var target RenderError
	return errors.As(err, &target)
}

func IsIdentityComm(err error) bool {
	var target IdentityCommError
	return errors.As(err, &target)
}

func IsUnidentifiedUser(err error) bool {
	var target UnidentifiedUserError
	return errors.As(err, &target)
}

func IsExport(err error) bool {
	var target ExportError
	return errors.As(err, &target)
}
