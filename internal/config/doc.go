// Package config loads the kspgrab configuration file.
//
// The file is HCL, decoded with hclsimple into Config. Expressions can read
// the process environment through the `env` object, which keeps secrets like
// the session cookie out of the file:
//
//	base_url       = "https://ksp.mff.cuni.cz"
//	session_cookie = env.KSP_SESSION
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
//	locale {
//	  solution_word = "Řešení"
//	}
//
// Every setting is optional; Load fills in defaults and validates the result.
package config
