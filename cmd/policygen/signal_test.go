package main

import (
	"context"
	"testing"
)

func TestNotifyContext_ParentCancel(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := notifyContext(parent)
	defer stop()

	if ctx.Err() != nil {
		t.Fatal("context cancelled before parent")
	}
	cancel()
	<-ctx.Done()
	if ctx.Err() == nil {
		t.Error("context not cancelled with parent")
	}
}

func TestNotifyContext_Stop(t *testing.T) {
	t.Parallel()

	ctx, stop := notifyContext(context.Background())
	stop()
	<-ctx.Done()
}
