package main

import (
	"github.com/reusee/dscope"
	"github.com/sekino/tra/storages"
	"github.com/sekino/tra/tools"
	"github.com/sekino/tra/traconfigs"
	"github.com/sekino/tra/trajectories"
)

type Module struct {
	dscope.Module
	Tools        tools.Module
	Trajectories trajectories.Module
	Storages     storages.Module
	Traconfigs   traconfigs.Module
}
