package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/fingerprint-server/internal/api/grpc/apiv1"
	"github.com/dtroode/fingerprint-server/internal/model"
)

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	var (
		employeeID int64
		finger     string
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete enrolled fingerprints of an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if employeeID <= 0 {
				return fmt.Errorf("--employee must be a positive id")
			}
			if finger != "" {
				if _, err := model.ParseFinger(finger); err != nil {
					return err
				}
			}

			conn, err := ctx.dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			callCtx, cancel := ctx.callContext(cmd.Context())
			defer cancel()

			resp, err := apiv1.NewFingerprintClient(conn).Delete(callCtx, &apiv1.DeleteRequest{
				EmployeeID: employeeID,
				Finger:     finger,
			})
			if err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().Int64Var(&employeeID, "employee", 0, "Employee id")
	cmd.Flags().StringVar(&finger, "finger", "", "Finger to delete, e.g. RIGHT_INDEX; all fingers when omitted")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}
