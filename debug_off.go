//go:build !xlistdebug

package xlist

const debug = false
