// Package scenario parses GPPC v1 scenario (.scen) files and resolves a
// scenario's declared map name to an actual map file path, per §6.
package scenario
