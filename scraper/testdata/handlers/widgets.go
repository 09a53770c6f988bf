package handlers

import "net/http"

// GetWidget returns one widget.
//
// @swagger
// Returns the widget with the given id.
//
// @id get
// @tag Widgets
// @summary Get a widget
// @param id {integer} *(path) the widget id
// @response 200 {Widget} the widget
// @response 404 not found
func GetWidget(w http.ResponseWriter, r *http.Request) {}

// @typedef Widget
// @property {string} name - the widget name
// @required
// @property {[]Widget} children - nested widgets
type Widget struct{}
