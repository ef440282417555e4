// SPDX-FileCopyrightText: 2023-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"github.com/atomix/go-bcount/pkg/bench"
	"github.com/atomix/runtime/sdk/pkg/errors"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"strconv"
)

const (
	// http://tldp.org/LDP/abs/html/exitcodes.html
	ExitSuccess = 0
	ExitError   = 1
	ExitBadArgs = 128
)

const (
	TableFormat = "table"
	YAMLFormat  = "yaml"
)

func isValidFormat(format string) bool {
	return format == TableFormat || format == YAMLFormat
}

func printResults(w io.Writer, format string, results []bench.Result) error {
	switch format {
	case TableFormat:
		table := tablewriter.NewWriter(w)
		table.Header("Case", "Size", "Iterations", "ns/op")
		for _, result := range results {
			err := table.Append([]string{
				result.Case,
				strconv.Itoa(result.Size),
				strconv.Itoa(result.Iterations),
				strconv.FormatInt(result.NsPerOp, 10),
			})
			if err != nil {
				return err
			}
		}
		return table.Render()
	case YAMLFormat:
		return encodeYAML(w, results)
	default:
		return errors.NewInvalid("unknown output format %s", format)
	}
}

func encodeYAML(w io.Writer, value interface{}) error {
	encoder := yaml.NewEncoder(w)
	if err := encoder.Encode(value); err != nil {
		return err
	}
	return encoder.Close()
}

func ExitWithOutput(output ...interface{}) {
	fmt.Fprintln(os.Stdout, output...)
	os.Exit(ExitSuccess)
}

func ExitWithSuccess() {
	os.Exit(ExitSuccess)
}

func ExitWithError(code int, err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(code)
}
