package main

import (
	"flag"
	"log"

	"github.com/emilyahsu/dad-birthday-card/assets"
	"github.com/emilyahsu/dad-birthday-card/common"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (hit shapes overlay, prefab hot reload)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	cardName := flag.String("card", "", "card prefab in prefabs/ (default card.yaml)")
	recipient := flag.String("to", "", "who the card is for")
	sender := flag.String("from", "", "who signs the card")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	if err := assets.LoadFonts(); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Happy Birthday")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(Options{
		CardName:  *cardName,
		Recipient: *recipient,
		Sender:    *sender,
		Debug:     *debug,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
