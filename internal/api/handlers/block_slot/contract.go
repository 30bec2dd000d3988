package block_slot

import (
	"context"

	blockSlot "github.com/DennizCann/RandevuApp-sub000/internal/usecase/block_slot"
)

type BlockSlotUseCase interface {
	Execute(ctx context.Context, req *blockSlot.Request) (*blockSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
