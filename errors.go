package bbx

import "errors"

var (
	ErrInvalidSignature  = errors.New("invalid context signature")
	ErrNotOperator       = errors.New("caller is not the sale operator")
	ErrSaleExists        = errors.New("sale already opened")
	ErrNoSale            = errors.New("sale doesn't exist")
	ErrCapacityExhausted = errors.New("sale capacity exhausted")
	ErrDeadlinePassed    = errors.New("request deadline passed")
	ErrClaimNotOpen      = errors.New("claim window not open yet")
	ErrOracleUnavailable = errors.New("chain oracle unavailable")
	ErrNoVoucher         = errors.New("no voucher held")
	ErrVoucherExists     = errors.New("voucher already held")
	ErrApplyConflict     = errors.New("conflict during apply")
)
