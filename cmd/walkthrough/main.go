package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"walkthrough/internal/collision"
	"walkthrough/internal/config"
	"walkthrough/internal/debug"
	"walkthrough/internal/graphics"
	"walkthrough/internal/house"
	"walkthrough/internal/input"
	"walkthrough/internal/logger"
	"walkthrough/internal/nav"
	"walkthrough/internal/ui"
)

func main() {
	cfg := config.Load()
	prefs, _ := config.LoadPrefs()
	log := logger.New()

	home := house.Build(cfg.House)
	home.GridVisible = prefs.GridVisible
	probe := collision.NewProbe(home, cfg.Movement.Clearance)

	coord := nav.New(cfg, probe, log)
	bar := ui.NewBar(coord)
	in := input.New(coord, bar)

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)

	var camera rl.Camera3D

	update := func(dt float32) {
		bar.Update()
		in.Update()
		pose := coord.Update(dt)
		pose.Apply(&camera)
		dbg.SetModeText("Mode: " + coord.Mode().Kind.String())
	}
	draw := func() {
		rl.BeginMode3D(camera)
		home.Draw()
		rl.EndMode3D()
		bar.Draw()
		dbg.Draw()
	}
	graphics.Run(update, draw)
}
