package ledger

import (
	"stock-ledger/internal/infra"
	"stock-ledger/internal/pkg/errs"
)

// mapRepoErr translates repository failures into the ledger's taxonomy.
// Domain errors pass through untouched.
func mapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Wrap(errs.ErrNotFound, err.Error())
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Wrap(errs.ErrInvalidState, err.Error())
	case infra.IsKind(err, infra.KindCheckViolated):
		return errs.Wrap(errs.ErrInvalidAdjustment, err.Error())
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	default:
		return err
	}
}
