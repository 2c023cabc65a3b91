package cue

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// LogPlayer only logs cues. Used when no client channel is configured.
type LogPlayer struct{}

func (LogPlayer) Play(_ context.Context, id ID) error {
	log.Debugf("cue [%s]: play", id)
	return nil
}

func (LogPlayer) Stop(_ context.Context, id ID) error {
	log.Tracef("cue [%s]: stop", id)
	return nil
}
