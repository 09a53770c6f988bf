package handlers

import "net/http"

// ListWidgets returns all widgets.
//
// @swagger
// Lists the widgets of a customer.
//
// @id list
// @tag Widgets
// @param customerId {string} *(path) the customer identifier
// @response 200 {Widget[]} the widgets
func ListWidgets(w http.ResponseWriter, r *http.Request) {}

type Server struct{}

/*
@swagger
@id create
@param body {Widget} *(body) the widget
@response 201 {Widget} created
*/
func (s *Server) CreateWidget(w http.ResponseWriter, r *http.Request) {}

// Helper is not an endpoint.
func Helper() {}

// Widget is a sellable item.
//
// @typedef Widget
// @property {string} name - the widget name
// @required
// @property {[]Part} parts - the parts
//
// @typedef Part
// @property {string} serial - serial number
type Widget struct {
	Name string
}

// @swagger
// @id detached
// @response 204 nothing
