package usecases

import (
	"context"
	"fmt"
	"strings"

	"campushub/internal/domain/complaint"
	"campushub/internal/shared/db"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
	"campushub/internal/shared/sanitize"
)

type AddCommentCommand struct {
	ComplaintID uint
	Author      string
	AuthorRole  string
	Text        string
}

type AddCommentResult struct {
	ComplaintID uint
	CommentID   uint
	// Skipped is set when the text was empty after trimming: nothing is
	// stored and the call still succeeds.
	Skipped bool
}

type AddCommentUseCase struct {
	complaintRepo complaint.ComplaintRepository
	commentRepo   complaint.CommentRepository
	txManager     db.Transactor
	logger        logger.Interface
}

func NewAddCommentUseCase(
	complaintRepo complaint.ComplaintRepository,
	commentRepo complaint.CommentRepository,
	txManager db.Transactor,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		complaintRepo: complaintRepo,
		commentRepo:   commentRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}
	if cmd.Author == "" {
		return nil, errors.NewValidationError("comment author is required")
	}

	text := sanitize.Text(cmd.Text)
	if strings.TrimSpace(text) == "" {
		uc.logger.Debugw("empty comment ignored", "complaint_id", cmd.ComplaintID, "author", cmd.Author)
		return &AddCommentResult{ComplaintID: cmd.ComplaintID, Skipped: true}, nil
	}

	c, err := uc.complaintRepo.FindByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to get complaint", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("complaint %d not found", cmd.ComplaintID))
	}

	comment, err := complaint.NewComment(c.ID(), cmd.Author, cmd.AuthorRole, text)
	if err != nil {
		return nil, err
	}

	c.AddComment(comment)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			return err
		}
		return uc.complaintRepo.Update(txCtx, c)
	})
	if err != nil {
		uc.logger.Errorw("failed to save comment", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, errors.NewInternalError("failed to add comment")
	}

	uc.logger.Infow("comment added", "complaint_id", cmd.ComplaintID, "author", cmd.Author)

	return &AddCommentResult{ComplaintID: c.ID(), CommentID: comment.ID()}, nil
}
