package inventory

import (
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// Operation es el enum cerrado de operaciones de ajuste. Se parsea en la frontera HTTP;
// aguas abajo nunca se compara contra strings sueltos.
type Operation string

const (
	OperationSet      Operation = "set"
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
)

// ParseOperation valida la palabra clave de operación del request.
func ParseOperation(s string) (Operation, error) {
	switch Operation(s) {
	case OperationSet, OperationAdd, OperationSubtract:
		return Operation(s), nil
	}
	return "", domain.ErrInvalidInput
}

func (o Operation) String() string { return string(o) }

// ChangeType devuelve el tipo de entrada de bitácora que corresponde a la operación.
func (o Operation) ChangeType() string {
	switch o {
	case OperationSet:
		return entity.ChangeTypeAdjustSet
	case OperationAdd:
		return entity.ChangeTypeAdjustAdd
	default:
		return entity.ChangeTypeAdjustSubtract
	}
}
