package shell

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

//go:embed helptext/usage.txt
var usageText string

func (sc *ShellController) usage() {
	var b strings.Builder
	b.WriteString(usageText)
	visible := lo.Filter(commands, func(c command, _ int) bool {
		return !c.hidden
	})
	for _, c := range visible {
		fmt.Fprintf(&b, "    :%s - %s\n", c.name, c.help)
	}
	sc.showMessage(b.String())
}
