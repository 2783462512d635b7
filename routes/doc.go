// See pointonline.go (which also carries the package documentation) and
// route.go for the exported types; this file holds no code.
package routes
