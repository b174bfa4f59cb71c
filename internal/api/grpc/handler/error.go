package handler

import (
	"context"
	"errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/fingerprint-server/internal/model"
)

const errorDomain = "fingerprint.v1"

func handleError(err error) error {
	var (
		validationErr *model.ValidationError
		extractionErr *model.ExtractionError
		fusionErr     *model.FusionError
		duplicateErr  *model.DuplicateRecordError
	)

	switch {
	case errors.As(err, &validationErr):
		st := status.New(codes.InvalidArgument, validationErr.Error())
		if detailed, dErr := st.WithDetails(&errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: validationErr.Field, Description: validationErr.Reason},
			},
		}); dErr == nil {
			st = detailed
		}
		return st.Err()
	case errors.As(err, &extractionErr):
		return status.Error(codes.FailedPrecondition, extractionErr.Error())
	case errors.As(err, &fusionErr):
		return status.Error(codes.FailedPrecondition, fusionErr.Error())
	case errors.As(err, &duplicateErr):
		st := status.New(codes.AlreadyExists, duplicateErr.Error())
		if detailed, dErr := st.WithDetails(&errdetails.ErrorInfo{
			Reason: "DUPLICATE_FINGERPRINT",
			Domain: errorDomain,
			Metadata: map[string]string{
				"employeeId": strconv.FormatInt(duplicateErr.EmployeeID, 10),
				"finger":     duplicateErr.Finger.String(),
			},
		}); dErr == nil {
			st = detailed
		}
		return st.Err()
	case errors.Is(err, model.ErrAuditInProgress):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, model.ErrMatcherUnavailable):
		switch status.Code(err) {
		case codes.DeadlineExceeded:
			return status.Error(codes.DeadlineExceeded, "matcher deadline exceeded")
		case codes.Canceled:
			return status.Error(codes.Canceled, "request canceled")
		default:
			return status.Error(codes.Unavailable, "matcher unavailable")
		}
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
