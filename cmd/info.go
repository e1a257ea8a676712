package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"
)

// HostInfo prints cpu and memory details for the host the renderer runs
// on.
func HostInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	cpuInfo, err := cpu.Info()
	if err != nil {
		return fmt.Errorf("could not query cpu info: %s", err)
	}
	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("could not query memory info: %s", err)
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})

	if len(cpuInfo) != 0 {
		table.Append([]string{"CPU model", cpuInfo[0].ModelName})
		table.Append([]string{"CPU clock", fmt.Sprintf("%.0f MHz", cpuInfo[0].Mhz)})
	}
	table.Append([]string{"Logical cores", fmt.Sprintf("%d", runtime.NumCPU())})
	table.Append([]string{"GOMAXPROCS", fmt.Sprintf("%d", runtime.GOMAXPROCS(0))})
	table.Append([]string{"Total memory", fmt.Sprintf("%.1f GiB", float64(memInfo.Total)/(1<<30))})
	table.Append([]string{"Available memory", fmt.Sprintf("%.1f GiB", float64(memInfo.Available)/(1<<30))})
	table.Append([]string{"Go version", runtime.Version()})

	table.Render()
	logger.Noticef("host information\n%s", buf.String())
	return nil
}
