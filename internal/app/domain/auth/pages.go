package auth

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const inputClass = `w-full rounded-lg border border-slate-700 bg-slate-900 px-3 py-2 text-sm placeholder:text-slate-600 focus:border-indigo-500 focus:outline-none`
const submitClass = `w-full rounded-lg bg-indigo-500 px-4 py-2 text-sm font-semibold text-white hover:bg-indigo-400`

// SignInPage renders the login form. Errors land in #login-response
// via HX-Retarget without a full page swap.
func SignInPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="mx-auto max-w-md py-12">
<h1 class="mb-6 text-2xl font-bold">Sign in</h1>
<div id="login-response" class="mb-4"></div>
<form method="post" action="/auth/login" hx-post="/auth/login" hx-target="#login-response" class="space-y-4">
<div><label class="mb-1 block text-sm text-slate-400" for="email">Email</label>
<input class="`+inputClass+`" type="email" id="email" name="email" placeholder="you@example.com" required></div>
<div><label class="mb-1 block text-sm text-slate-400" for="password">Password</label>
<input class="`+inputClass+`" type="password" id="password" name="password" required></div>
<button class="`+submitClass+`" type="submit">Sign in</button>
</form>
<p class="mt-4 text-sm text-slate-500">New to Wostup? <a class="text-indigo-400 hover:text-indigo-300" href="/register">Create an account</a></p>
</div>`)
		return err
	})
}

// SignUpPage renders the registration form with the role choice.
func SignUpPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="mx-auto max-w-md py-12">
<h1 class="mb-6 text-2xl font-bold">Create your account</h1>
<div id="signup-response" class="mb-4"></div>
<form method="post" action="/auth/register" hx-post="/auth/register" hx-target="#signup-response" class="space-y-4">
<div><label class="mb-1 block text-sm text-slate-400" for="username">Username</label>
<input class="`+inputClass+`" type="text" id="username" name="username" required></div>
<div><label class="mb-1 block text-sm text-slate-400" for="email">Email</label>
<input class="`+inputClass+`" type="email" id="email" name="email" required></div>
<div><label class="mb-1 block text-sm text-slate-400">I am a</label>
<div class="flex gap-4 text-sm">
<label class="flex items-center gap-2"><input type="radio" name="role" value="student" checked> Student</label>
<label class="flex items-center gap-2"><input type="radio" name="role" value="startup"> Startup</label>
</div></div>
<div><label class="mb-1 block text-sm text-slate-400" for="password">Password</label>
<input class="`+inputClass+`" type="password" id="password" name="password" required></div>
<div><label class="mb-1 block text-sm text-slate-400" for="confirm_password">Confirm password</label>
<input class="`+inputClass+`" type="password" id="confirm_password" name="confirm_password" required></div>
<button class="`+submitClass+`" type="submit">Create account</button>
</form>
<p class="mt-4 text-sm text-slate-500">Already have an account? <a class="text-indigo-400 hover:text-indigo-300" href="/login">Sign in</a></p>
</div>`)
		return err
	})
}
