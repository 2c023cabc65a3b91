package cue

import (
	"context"

	"go.uber.org/multierr"
)

// ID names an audio/haptic cue the client knows how to render.
type ID string

const (
	RestFinishing ID = "rest-finishing"
	RestFinished  ID = "rest-finished"
)

func (id ID) String() string { return string(id) }

type Action string

const (
	ActionPlay Action = "play"
	ActionStop Action = "stop"
)

// Player triggers cues. Implementations are fire-and-forget, callers ignore
// returned errors after logging them.
type Player interface {
	Play(ctx context.Context, id ID) error
	Stop(ctx context.Context, id ID) error
}

// Players fans every call out to all players, combining their errors.
type Players []Player

func (p Players) Play(ctx context.Context, id ID) error {
	var err error
	for _, player := range p {
		err = multierr.Append(err, player.Play(ctx, id))
	}
	return err
}

func (p Players) Stop(ctx context.Context, id ID) error {
	var err error
	for _, player := range p {
		err = multierr.Append(err, player.Stop(ctx, id))
	}
	return err
}
