package main

// _version is the version of hljspage.
// Release builds override it with -ldflags.
var _version = "dev"
