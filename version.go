package main

// `version` property will be replaced by the build upon release
var version = "snapshot"
