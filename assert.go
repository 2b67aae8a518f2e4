//go:build !gridview_debug

package gridview

// debugBuild enables fail-fast assertions. Build with -tags gridview_debug.
const debugBuild = false
