// Command vec3 exercises the vec3 library from the shell.
//
//	vec3 hello             # cross product sample
//	vec3 hello --handles   # same numbers through the handle registry
//	vec3 dot "{1 0 0}" "{1 1 0}"
//	vec3 cross "{1 0 0}" "{0 1 0}" --output json
//	vec3 equal ABC abc
//	vec3 config init
package main
