// gifprint decodes a GIF file and prints it on the terminal.
package main

import (
	"flag"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/go-gif/gif"
	"badc0de.net/pkg/go-gif/paths"

	"github.com/golang/glog"
)

var (
	col      = flag.Bool("col", true, "whether to print in color at all")
	col256   = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	iterm    = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	rasterm  = flag.Bool("rasterm", false, "whether to print with the rasterm library (kitty, iterm, sixel)")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", true, "whether to downsize the image to the terminal dimensions")

	gifPath string
)

func main() {
	paths.SetupFilePathFlag("sample.gif", "gif_path", &gifPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	fileName := gifPath
	if flag.NArg() > 0 {
		fileName = flag.Arg(0)
	}
	if fileName == "" {
		glog.Exit("no gif file passed; use --gif_path or pass a path as an argument")
	}

	data, err := paths.ReadFile(fileName)
	if err != nil {
		glog.Exitf("could not load %q: %s", fileName, err)
	}

	m, err := gif.DecodeIndexed(data)
	if err != nil {
		glog.Exitf("could not decode %q: %s", fileName, err)
	}

	glog.Infof("decoded %q: %s, %dx%d, %d colors", fileName, m.Header.Signature, m.Desc.Width, len(m.Rows), len(m.Table))

	out(m.Image())
}
