// gifweb serves a decoded GIF file over HTTP.
package main

import (
	"flag"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/go-gif/paths"
	"badc0de.net/pkg/go-gif/web"

	figure "github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

var (
	listenAddress = flag.String("listen_address", ":8080", "http listen address for gifweb")

	gifPath string
)

func main() {
	paths.SetupFilePathFlag("sample.gif", "gif_path", &gifPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if gifPath == "" {
		glog.Exit("no gif file found; use --gif_path")
	}

	figure.NewFigure("gifweb", "", true).Print()

	r := mux.NewRouter()
	web.NewHandler(gifPath).AddToRouter(r)

	glog.Infof("serving %q on %s", gifPath, *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress, handlers.CombinedLoggingHandler(os.Stdout, r)))
}
