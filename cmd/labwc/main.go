// Command labwc is the compositor's CLI entrypoint: it wires config/theme
// directory discovery, the startup command flag, and graceful-shutdown
// signal handling around the server package. The Wayland socket, backend
// and renderer this would hand off to are external collaborators and are
// not implemented here.
package main

func main() {
	Execute()
}
