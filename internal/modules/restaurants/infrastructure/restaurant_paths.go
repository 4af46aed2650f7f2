package infrastructure

import (
	"fmt"
	"net/url"
	"strings"

	"foodieConsole/internal/modules/restaurants/application/port"
)

const restaurantBasePath = "/api/v1/restaurant"

type pathBuilder func(string) (string, error)

type restaurantEndpoints struct {
	listPathBuilder   pathBuilder
	createPathBuilder pathBuilder
	detailPathBuilder pathBuilder
	updatePathBuilder pathBuilder
	deletePathBuilder pathBuilder
}

var endpoints = restaurantEndpoints{
	listPathBuilder:   staticPathBuilder(restaurantBasePath + "/getAllRestaurants"),
	createPathBuilder: staticPathBuilder(restaurantBasePath + "/createRestaurant"),
	detailPathBuilder: resourcePathBuilder(restaurantBasePath + "/getRestaurantById"),
	updatePathBuilder: resourcePathBuilder(restaurantBasePath + "/updateRestaurantById"),
	deletePathBuilder: resourcePathBuilder(restaurantBasePath + "/deleteRestaurantById"),
}

func staticPathBuilder(path string) pathBuilder {
	trimmed := strings.TrimSpace(path)
	return func(string) (string, error) {
		if trimmed == "" {
			return "", fmt.Errorf("missing path configuration")
		}
		return trimmed, nil
	}
}

func resourcePathBuilder(base string) pathBuilder {
	trimmed := strings.TrimSpace(base)
	return func(value string) (string, error) {
		identifier := strings.TrimSpace(value)
		if identifier == "" {
			return "", port.ErrNotFound
		}
		return strings.TrimRight(trimmed, "/") + "/" + url.PathEscape(identifier), nil
	}
}
