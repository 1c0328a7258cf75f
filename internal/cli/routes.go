package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/busdepot/internal/common"
	"github.com/dmitrijs2005/busdepot/internal/models"
	"github.com/dmitrijs2005/busdepot/internal/store"
)

var fieldChoices = map[string]models.RouteField{
	"1": models.RouteFieldNumber,
	"2": models.RouteFieldBusType,
	"3": models.RouteFieldDestination,
}

var fieldPrompts = map[models.RouteField]string{
	models.RouteFieldNumber:      "Enter route number: ",
	models.RouteFieldBusType:     "Enter bus type: ",
	models.RouteFieldDestination: "Enter destination point: ",
}

// chooseField asks which route attribute to use. ok is false on 0 or an
// unknown choice.
func (a *App) chooseField(title string) (f models.RouteField, ok bool, err error) {
	a.println()
	a.println(title)
	a.println("1. By route number")
	a.println("2. By bus type")
	a.println("3. By destination point")
	a.println("0. Return")

	choice, err := a.text("Your choice: ")
	if err != nil || choice == "0" {
		return "", false, err
	}
	f, ok = fieldChoices[choice]
	if !ok {
		a.fail("Incorrect choice.")
	}
	return f, ok, nil
}

func (a *App) searchRoutes(ctx context.Context) error {
	field, ok, err := a.chooseField("Choose data to search:")
	if err != nil || !ok {
		return err
	}
	value, err := a.text(fieldPrompts[field])
	if err != nil {
		return err
	}

	found, err := a.svc.FindRoutes(ctx, field, value)
	if err != nil {
		a.fail(err.Error())
		return nil
	}
	if len(found) == 0 {
		a.println("No results.")
		return nil
	}
	a.printRoutes("Results:", found)
	return nil
}

func (a *App) sortRoutes(ctx context.Context) error {
	field, ok, err := a.chooseField("Choose data to sort by:")
	if err != nil || !ok {
		return err
	}

	sorted, err := a.svc.SortRoutes(ctx, field)
	if err != nil {
		a.fail(err.Error())
		return nil
	}
	a.printRoutes("Sorted routes:", sorted)
	return nil
}

func (a *App) arrivingWithin(ctx context.Context) error {
	limit, ok, err := a.clock("Enter time (HH:mm): ")
	if err != nil || !ok {
		return err
	}

	found, err := a.svc.RoutesArrivingWithin(ctx, limit)
	if err != nil {
		a.fail(err.Error())
		return nil
	}
	if len(found) == 0 {
		a.println(fmt.Sprintf("There are no routes arriving at least %d hours before %s.", store.ArrivalWindowHours, limit))
		return nil
	}
	a.printRoutes("Results:", found)
	return nil
}

func (a *App) addRoute(ctx context.Context) error {
	a.header("Create new route")

	var r models.Route
	var err error
	if r.Number, err = a.text("Enter route number: "); err != nil {
		return err
	}
	if r.BusType, err = a.text("Enter bus type: "); err != nil {
		return err
	}
	if r.Destination, err = a.text("Enter destination point: "); err != nil {
		return err
	}

	var ok bool
	if r.Departure, ok, err = a.clock("Enter departure time (HH:mm): "); err != nil || !ok {
		return err
	}
	if r.Arrival, ok, err = a.clock("Enter arrival time (HH:mm): "); err != nil || !ok {
		return err
	}

	a.done(a.svc.AddRoute(ctx, r), "Route created successfully.")
	return nil
}

func (a *App) editRoute(ctx context.Context) error {
	a.header("Route editing")
	number, err := a.text("Enter route number to edit: ")
	if err != nil {
		return err
	}

	old, err := a.svc.GetRoute(ctx, number)
	if errors.Is(err, common.ErrorNotFound) {
		a.fail(fmt.Sprintf("Route №%s not found.", number))
		return nil
	}
	if err != nil {
		a.fail(err.Error())
		return nil
	}
	a.println("Old route data:")
	a.println(old)

	var patch models.RoutePatch
	if patch.BusType, err = a.optionalText("Enter new bus type (leave blank to skip): "); err != nil {
		return err
	}
	if patch.Destination, err = a.optionalText("Enter new destination point (leave blank to skip): "); err != nil {
		return err
	}
	if patch.Departure, err = a.optionalClock("Enter new departure time (HH:mm) (leave blank to skip): "); err != nil {
		return err
	}
	if patch.Arrival, err = a.optionalClock("Enter new arrival time (HH:mm) (leave blank to skip): "); err != nil {
		return err
	}

	_, err = a.svc.UpdateRoute(ctx, number, patch)
	a.done(err, "Route updated successfully.")
	return nil
}

func (a *App) deleteRoute(ctx context.Context) error {
	a.header("Route deleting")
	number, err := a.text("Enter route number to delete: ")
	if err != nil {
		return err
	}

	err = a.svc.DeleteRoute(ctx, number)
	if errors.Is(err, common.ErrorNotFound) {
		a.fail("Route with this number not found.")
		return nil
	}
	a.done(err, "Route deleted successfully.")
	return nil
}
