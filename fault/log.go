// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel name for the last words of a failing program
const panicChannel = "PANIC"

// give the logger a chance to write its buffers before unwinding,
// only needed when the PANIC channel is active
const flushDelay = 100 * time.Millisecond

// hold a logger channel
var globalData struct {
	sync.Mutex
	log *logger.L
}

// Initialise - setup a log channel for last attempt to log something
//
// logger.Initialise must have been called first
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.log {
		return ErrAlreadyInitialised
	}
	globalData.log = logger.New(panicChannel)
	if nil == globalData.log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.log {
		globalData.log.Flush()
		globalData.log = nil
	}
}

// Criticalf - log a formatted string, prefixed with the caller's location
func Criticalf(format string, arguments ...interface{}) {
	f, a := callerFormat(2, format, arguments)
	internalCriticalf(f, a...)
}

// Panic - log the message and panic
func Panic(message string) {
	if internalCriticalf("%s", message) {
		time.Sleep(flushDelay)
	}
	panic(message)
}

// Panicf - log a formatted message with the caller's location and panic
func Panicf(format string, arguments ...interface{}) {
	f, a := callerFormat(2, format, arguments)
	message := fmt.Sprintf(f, a...)
	if internalCriticalf("%s", message) {
		time.Sleep(flushDelay)
	}
	panic(message)
}

// PanicWithError - final panic showing the error that caused it
func PanicWithError(message string, err error) {
	Panic(fmt.Sprintf("%s failed with error: %s", message, err))
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

// internal: prepend "(file:line)" of the caller skip levels up
func callerFormat(skip int, format string, arguments []interface{}) (string, []interface{}) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return format, arguments
	}
	a := make([]interface{}, 2, 2+len(arguments))
	a[0] = file
	a[1] = line
	return "(%q:%d) " + format, append(a, arguments...)
}

// internal: routines to handle uninitialised logger channel
//
// true if the message went to the PANIC channel
func internalCriticalf(format string, arguments ...interface{}) bool {
	globalData.Lock()
	log := globalData.log
	globalData.Unlock()

	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return false
	}
	log.Criticalf(format, arguments...)
	log.Flush()
	return true
}
