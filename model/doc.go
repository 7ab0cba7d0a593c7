// Package model is the stateful, name-based front end to the simulator.
//
// A Model collects named nodes and typed edges, packs them into a validated
// network.Network on Setup, and then advances its own temperature vector and
// clock with Run or Execute:
//
//	m := model.New(model.WithTimeStep(0.05))
//	cup, _ := m.DefineObject("water", 353.15, 250*units.CubicCentimetre, "Cup")
//	room, _ := m.DefineNode("Room", 293.15, math.Inf(1))
//	_ = m.DefineConduction(cup, room, 2.5)
//	_ = m.Setup()
//	_ = m.Execute(10*units.Minute, units.Minute)
//
// Defining anything after Setup marks the model as not ready until Setup is
// called again. A failed Run leaves the temperatures and the clock untouched.
//
// A Model is not safe for concurrent use.
package model
