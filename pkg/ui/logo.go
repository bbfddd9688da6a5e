package ui

import "github.com/pterm/pterm"

const LogoASCII = `
 ___     ___      __  __  _    ___  ____    ____  _____   ___
|   \   /   \    /  ]|  l/ ]  /  _]|    \  /    T/ ___/  /  _]
|    \ Y     Y  /  / |  ' /  /  [_ |  D  )Y  o  (   \_  /  [_
|  D  Y|  O  | /  /  |    \ Y    _]|    / |     |\__  TY    _]
|     ||     |/   \_ |     Y|   [_ |    \ |  _  |/  \ ||   [_
|     |l     !\     ||  .  ||     T|  .  Y|  |  |\    ||     T
l_____j \___/  \____jl__j\_jl_____jl__j\_jl__j__j \___jl_____j
`

func PrintBanner() {
	pterm.Println(pterm.NewRGB(0, 191, 255).Sprint(LogoASCII))
}
