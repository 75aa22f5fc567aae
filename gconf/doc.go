/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration object, stored under a key derived
from the extension name. The configuration is loaded from the genesis file
under the "conf" section and validated before it is saved.

Not being able to get a configuration is a critical condition for the
application and there is no recovery path for the client. The application must
be configured correctly.
*/
package gconf
