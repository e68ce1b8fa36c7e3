// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Errors returned by the Kubernetes API are classified into a small, flat
// set of codes (conflict, unauthorized, invalid, not found, timeout,
// unavailable, internal) so HTTP callers can tell retryable failures from
// terminal ones.
//
// Example usage:
//
//	_, err := clientset.AppsV1().Deployments(ns).Create(ctx, deploy, metav1.CreateOptions{})
//	if err != nil {
//	    return errors.WrapKubernetes(
//	        "failed to create Deployment",
//	        err,
//	        map[string]any{
//	            "name":      deploy.Name,
//	            "namespace": ns,
//	        },
//	    )
//	}
package errors
