package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/game"
)

// botActions weights the bot towards sideways moves and rotations so pieces
// spread across the board before they lock.
var botActions = []game.Action{
	game.MoveLeft, game.MoveLeft, game.MoveLeft,
	game.MoveRight, game.MoveRight, game.MoveRight,
	game.RotateClockwise, game.RotateClockwise,
	game.RotateCounterClockwise,
	game.SoftDrop, game.SoftDrop,
	game.HardDrop,
}

// BotSystem queues random actions every frame.
type BotSystem struct {
	rng            *rand.Rand
	ActionsPerTick int
}

func NewBotSystem(seed uint64, actionsPerTick int) *BotSystem {
	return &BotSystem{
		rng:            rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		ActionsPerTick: actionsPerTick,
	}
}

func (b *BotSystem) Execute(frame *game.UpdateFrame) {
	for range b.ActionsPerTick {
		frame.Commands.Push(botActions[b.rng.IntN(len(botActions))])
	}
}
