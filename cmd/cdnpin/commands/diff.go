package commands

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// wordDiff renders the change from before to after inline, git word-diff style
func wordDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString(del.Sprint("[-" + d.Text + "-]"))
		case diffmatchpatch.DiffInsert:
			b.WriteString(ins.Sprint("{+" + d.Text + "+}"))
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
