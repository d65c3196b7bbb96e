/*
 * This file is part of aarovia.
 *
 * aarovia is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * aarovia is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with aarovia.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/TanujTS/aarovia-sub001/api"
	"github.com/TanujTS/aarovia-sub001/pkg"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func cmd(instance *Instance) *cobra.Command {
	root := &cobra.Command{
		Use:   "aarovia",
		Short: "patient controlled access to medical records",
	}

	root.AddCommand(checkCmd(instance))
	root.AddCommand(tokenCmd())
	return root
}

func checkCmd(instance *Instance) *cobra.Command {
	var record, patient, recordType, requester string
	check := &cobra.Command{
		Use:   "check",
		Short: "Evaluate an access check against the configured store without changing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recordID, err := pkg.ParseRecordID(record)
			if err != nil {
				return err
			}
			patientID, err := pkg.ParsePatientID(patient)
			if err != nil {
				return err
			}
			rt, err := pkg.ParseRecordType(recordType)
			if err != nil {
				return err
			}
			requesterAddress, err := pkg.ParseAddress(requester)
			if err != nil {
				return err
			}

			instance.ReadOnly = true
			if err := instance.Configure(); err != nil {
				return err
			}
			if err := instance.Start(); err != nil {
				return err
			}
			defer instance.Shutdown()

			decision := instance.AccessControl.Decide(recordID, patientID, rt, requesterAddress)
			out := cmd.OutOrStdout()
			if decision.Allowed {
				color.New(color.FgGreen, color.Bold).Fprint(out, "ALLOW")
			} else {
				color.New(color.FgRed, color.Bold).Fprint(out, "DENY")
			}
			fmt.Fprintf(out, " %s reading %s record %s of patient %s (%s)\n", requesterAddress, rt, recordID, patientID, decision.Path)
			return nil
		},
	}
	check.Flags().StringVar(&record, "record", "", "record id")
	check.Flags().StringVar(&patient, "patient", "", "patient id")
	check.Flags().StringVar(&recordType, "type", pkg.RecordTypeGeneral.String(), "record type")
	check.Flags().StringVar(&requester, "requester", "", "address of the requester")
	_ = check.MarkFlagRequired("record")
	_ = check.MarkFlagRequired("patient")
	_ = check.MarkFlagRequired("requester")
	return check
}

func tokenCmd() *cobra.Command {
	var ttl time.Duration
	token := &cobra.Command{
		Use:   "token [address]",
		Short: "Issue a bearer token for an address, signed with the configured secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := pkg.ParseAddress(args[0])
			if err != nil {
				return err
			}
			config := configFromViper()
			if config.AuthSecret == "" {
				return errors.New("no auth secret configured")
			}
			validator := api.NewTokenValidator(config.AuthSecret)
			validator.Issuer = config.AuthIssuer
			signed, err := validator.Issue(caller, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}
	token.Flags().DurationVar(&ttl, "ttl", time.Hour, "validity of the token")
	return token
}
