package cmd

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
	"github.com/ritobanrc/firework/scene/preset"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in preset scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, name := range preset.Names() {
		table.Append([]string{name, preset.Describe(name)})
	}

	table.Render()
	logger.Noticef("available preset scenes\n%s", buf.String())
	return nil
}
