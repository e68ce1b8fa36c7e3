// Package cli implements appctl, the command-line interface of the
// Application Deployer.
//
// # Commands
//
// validate - Check a descriptor:
//
//	appctl validate -f app.yaml [--format yaml|json|table]
//
// Decodes the descriptor and reports every field error. Exits non-zero when
// the descriptor is invalid.
//
// render - Print the synthesized objects:
//
//	appctl render -f app.yaml [--namespace NS] [--container-port N]
//
// Writes the Secret, Deployment, Service and Ingress as a YAML stream, a JSON
// v1 List, or a summary table. No cluster access is needed.
//
// deploy - Submit the objects to a cluster:
//
//	appctl deploy -f app.yaml [--kubeconfig PATH] [--mode create|apply] [--rollback] [--timeout 1m] [--wait 2m]
//
// Prints a DeployResult listing the objects written and, on failure, the
// failing step and the objects removed by rollback. With --wait the command
// also waits for the Deployment to become available.
//
// # Global Flags
//
//	--log-level    Logging verbosity (debug, info, warn, error)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL            Default for --log-level
//	KUBECONFIG           Kubeconfig used when --kubeconfig is not set
//	DEPLOY_NAMESPACE     Default for --namespace
//	CONTAINER_PORT       Default for --container-port
//	DEPLOY_MODE          Default for --mode
//	ROLLBACK_ON_FAILURE  Default for --rollback
//	SUBMIT_TIMEOUT       Default for --timeout
//
// # Exit Codes
//
//	0  Success
//	1  Invalid descriptor, invalid arguments or failed deploy
package cli
