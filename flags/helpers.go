package flags

import (
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

func NewApp() *cli.App {

	app := cli.NewApp()
	app.Name = "qkcconfig"
	app.Usage = "QuarkChain network configuration tool"
	app.Action = func(c *cli.Context) error {
		return cli.ShowAppHelp(c)
	}
	app.Version = "0.1.0"
	app.Writer = os.Stdout
	return app

}
