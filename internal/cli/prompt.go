// Copyright (c) 2026 Keymaster Team
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toeirei/pwstrength/internal/i18n"
	"github.com/toeirei/pwstrength/internal/logging"
	"github.com/toeirei/pwstrength/internal/report"
	"github.com/toeirei/pwstrength/internal/strength"
	"golang.org/x/term"
)

// runPrompt asks for one password, scores it and prints the report.
// Every password, including the empty one, ends with exit code 0.
func (a *app) runPrompt() error {
	fmt.Fprint(a.out, i18n.T("prompt.enter_password"))

	password, err := readPassword(a.in, a.out, a.cfg.Display.Echo)
	if err != nil {
		return fmt.Errorf("%s: %w", i18n.T("cli.error_read_password"), err)
	}

	res := strength.Evaluate(password)
	logging.Debugf("evaluated password: score=%d unmet=%d", res.Score, len(res.Unmet))
	return report.Render(a.out, res, report.Options{NoColor: a.cfg.Display.NoColor})
}

// readPassword reads a single line. On a terminal, unless echo is set, the
// input is read without echoing it back.
func readPassword(in io.Reader, out io.Writer, echo bool) (string, error) {
	if f, ok := in.(*os.File); ok && !echo && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
