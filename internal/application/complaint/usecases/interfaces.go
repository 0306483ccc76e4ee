package usecases

import (
	"context"

	"campushub/internal/application/complaint/dto"
)

type SubmitComplaintExecutor interface {
	Execute(ctx context.Context, cmd SubmitComplaintCommand) (*SubmitComplaintResult, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type GetComplaintExecutor interface {
	Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error)
}

type ListComplaintsExecutor interface {
	Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error)
}

type ListMyComplaintsExecutor interface {
	Execute(ctx context.Context, query ListMyComplaintsQuery) (*ListMyComplaintsResult, error)
}

type GetStatsExecutor interface {
	Execute(ctx context.Context) (*GetStatsResult, error)
}
