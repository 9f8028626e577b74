// Package tasks defines collaborators shared by the verification task services.
package tasks
