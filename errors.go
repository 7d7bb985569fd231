/*
 * errors.go, part of molonsurf.
 *
 * Copyright 2026 Sebastian Echeverri <sebastianecheverrir{at}gmailDOTcom>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package surf

import "fmt"

//CError is the concrete error type of the root package. It fulfills the
//Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds new information to the error
func (err CError) Decorate(deco string) []string {
	//This method does not use a pointer receiver but still alters the
	//receiver; it works because err.deco is a slice, hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it. Panics on a non-Error error.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//Messages for the errors the root package produces.
const (
	NonFiniteCoords = "Configuration contains non-finite coordinates"
	WrongXYZFormat  = "Ill-formatted XYZ file"
)

//NewError returns a CError with the given message, decorated with the
//caller's name. Mostly for the use of the other packages in the library.
func NewError(msg, caller string) CError {
	return CError{msg, []string{caller}}
}

//makeError is a convenience to build a CError from a format string.
func makeError(caller, format string, a ...interface{}) CError {
	return CError{fmt.Sprintf(format, a...), []string{caller}}
}
