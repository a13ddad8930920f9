package main

import (
	"github.com/roveo/dirnav/cmd"
	"github.com/roveo/dirnav/internal/compose"
)

func main() {
	cmd.ExecuteNavigate("dirmapnewtab", compose.ModeNewTab)
}
