package main

import "invader/internal/game"

func main() {
	game.RunDesktop()
}
