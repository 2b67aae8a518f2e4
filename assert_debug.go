//go:build gridview_debug

package gridview

const debugBuild = true
