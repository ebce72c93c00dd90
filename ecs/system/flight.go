package system

import (
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/flight"
)

// FlightSystem applies the throttle speed model to every craft each tick.
type FlightSystem struct{}

func NewFlightSystem() *FlightSystem {
	return &FlightSystem{}
}

func (s *FlightSystem) Update(w *ecs.World) {
	clock, ok := frameClock(w)
	if !ok {
		return
	}
	dt := clock.Delta()

	ecs.ForEach2(w, component.InputComponent.Kind(), component.FlightComponent.Kind(), func(_ ecs.Entity, input *component.Input, fl *component.Flight) {
		fl.Speed = flight.NextSpeed(fl.Speed, fl.Tuning, input.Thrust, dt)
	})
}

// BankSystem eases the visual roll of each craft toward its MoveRight input.
type BankSystem struct{}

func NewBankSystem() *BankSystem {
	return &BankSystem{}
}

func (s *BankSystem) Update(w *ecs.World) {
	clock, ok := frameClock(w)
	if !ok {
		return
	}
	dt := clock.Delta()

	ecs.ForEach3(w, component.InputComponent.Kind(), component.FlightComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, input *component.Input, fl *component.Flight, tr *component.Transform) {
		tr.Bank = flight.Bank(tr.Bank, input.MoveRight, fl.Tuning, dt)
	})
}
